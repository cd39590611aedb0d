// Package buffer provides the text storage primitives used by the
// completion engine: a line-indexed buffer and zero-based line/column
// points. Columns are byte offsets within a line; callers working in
// display cells convert at the rendering layer.
package buffer
