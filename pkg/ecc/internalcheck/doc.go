// Package internalcheck holds static policy tests over the ecc package.
//
// The tests load pkg/ecc with golang.org/x/tools/go/packages and walk its
// syntax trees looking for patterns that are easy to get wrong with
// math/big values. It is not intended for external use and exports nothing.
package internalcheck

// eccPackage is the import path the policy tests inspect.
const eccPackage = "github.com/coinbase/ecc-go/pkg/ecc"
