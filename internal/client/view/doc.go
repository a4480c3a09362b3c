// Package view renders games into a Document of named containers and writes
// the document out as one HTML page. All markup goes through html/template,
// so server-supplied text is always escaped.
package view
