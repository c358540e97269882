// Package normalisers provides implementations of the Normaliser interface
// for various document formats. Each normaliser knows how to extract
// analysable text from a specific MIME type.
//
// Normalisers are collected in a Registry, which picks the highest
// priority normaliser for a document's MIME type.
package normalisers
