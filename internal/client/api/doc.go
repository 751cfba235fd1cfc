// Package api implements the remote side of the client: password sign-in
// against the identity endpoint and vault reads/writes against the document
// store's REST interface. Transport failures and backend error statuses are
// translated into the package's sentinel errors at this boundary; nothing
// above it sees raw HTTP errors.
package api
