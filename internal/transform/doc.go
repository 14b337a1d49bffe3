// Package transform converts raw input rows into output records.
//
// It owns the per-row rules: structural validation (skip on empty title,
// abort on empty year), field normalization with warning-and-default
// fallbacks, the rating/view-count consistency check, and derivation of the
// wishlisted, recommended, and done flags. Done requires a watched
// confirmation from the injected prompt.Confirmer for any row that has been
// viewed at least once.
package transform
