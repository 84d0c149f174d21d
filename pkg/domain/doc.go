// Package domain contains the core types of the lattice plan applier:
// the Module tree capability, the Mesh topology handle, the Transform
// contract, and the Plan shapes resolved against a tree.
//
// The types here are deliberately small interfaces. Lattice does not own
// the tree-node type, the transforms, or the mesh; hosts bring their own
// and the applier only drives resolution and replacement.
package domain
