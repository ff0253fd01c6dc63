// Package store is the document store adapter. It defines the collection
// interfaces the services depend on and provides DynamoDB, MongoDB and
// in-memory implementations. Identifiers are generated by the store and must
// parse as that store's native id format.
package store
