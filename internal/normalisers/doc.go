// Package normalisers provides implementations of the Normaliser
// interface for corpus file formats. Each normaliser knows how to
// turn one raw file into a domain.Document: parsing its metadata
// block, applying defaults, and extracting whatever structure later
// index stages need.
package normalisers
