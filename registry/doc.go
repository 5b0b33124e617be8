// Package registry implements the key-manager resolution core of keyreg.
//
// Every primitive instantiation in the library goes through a Catalogue:
// a per-primitive resolver that maps an opaque key-type URL to the
// KeyManager handling that key type, subject to a minimum-version floor.
//
// Resolution is a pure function of its arguments and the catalogue's
// build-time mapping. Catalogues are immutable after construction and safe
// for unsynchronized concurrent use; there is no runtime registration API.
package registry
