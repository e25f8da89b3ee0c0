// Package seolens provides a CLI-based SEO content audit tool.
// It crawls a site or a URL list, extracts the main content of each page,
// computes readability and depth metrics, assigns a quality label, and
// flags near-duplicate pages by TF-IDF cosine similarity.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, gin/).
package seolens
