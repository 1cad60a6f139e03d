// Package rewrite converts absolute documentation links into relative
// file-system links.
//
// A run walks a documentation tree, finds every `](<destination>)` span whose
// destination starts with a configured URL prefix, and replaces it with a path
// relative to the containing document. Everything else passes through
// byte-for-byte: external schemes, unrecognized prefixes, and spans that do
// not parse as links. Documents are only written back when their content
// actually changed, so a second run over converted output is a no-op.
package rewrite
