//go:build !darwin

package shader

// Version is the pragma prepended to every stage.
const Version = "#version 130"
