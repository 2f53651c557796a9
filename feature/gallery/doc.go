// Package gallery manages the image sets shown for product lines.
//
// A gallery is keyed by the (category, class) pair and holds an ordered list
// of public image URLs. Images are uploaded separately to object storage and
// referenced by URL, so the same image can appear in several lines without
// duplication.
package gallery
