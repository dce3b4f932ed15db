// Package assets provides the stylesheets and HTML templates that ship
// with the generator. Assets load from embedded files by default, or from
// a custom directory via DirLoader (the CLI's --asset-path flag).
package assets
