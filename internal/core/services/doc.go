// Package services implements the driving port interfaces.
// Services apply the configured defaults, orchestrate normalisation
// and delegate the analyses themselves to package analysis.
//
// Services are pure Go with no CGO.
package services
