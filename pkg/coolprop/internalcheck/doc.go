// Package internalcheck holds repository policy tests. It is not part of the
// public API and may change without notice.
package internalcheck
