// Package domain contains the core business entities, value objects, and
// domain logic of the blog: users and their roles, posts, categories and comments,
// and the paging policy used by listings. It is independent of any specific
// infrastructure or delivery mechanism.
package domain
