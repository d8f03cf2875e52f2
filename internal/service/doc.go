// Package service implements the blog's content operations over the store
// interfaces: posts with paged listings, categories and comments.
//
// Multi-statement operations run inside store.RunInTransaction with
// transaction-bound stores obtained through WithTx.
package service
