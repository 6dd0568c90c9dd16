// Package catalog holds the function catalog: every user-defined function
// with its own graph document, declared input/output signature, and local
// variable declarations, plus the designation of the Main function.
//
// A function definition is to the compiler what a runner definition is to an
// executor: a reusable contract. A call node in some other graph is an
// invocation of that contract, with ports mirroring the declared signature.
package catalog
