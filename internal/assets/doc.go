// Package assets embeds a web-asset directory into a generated project by
// replacing the destination tree with a fresh copy of the source.
package assets
