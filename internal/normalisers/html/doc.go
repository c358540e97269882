// Package html provides a Normaliser implementation for HTML documents.
// The main article is located with go-readability; when no article can be
// found the whole body is used. Block elements become paragraphs
// separated by blank lines.
package html
