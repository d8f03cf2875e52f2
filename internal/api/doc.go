// Package api handles incoming HTTP requests for the blog: request decoding
// and validation, calls into the post, category, comment and auth services,
// and translation of their errors into JSON responses.
package api
