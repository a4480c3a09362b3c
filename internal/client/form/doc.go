// Package form turns a filled-in Form into the JSON payload a page controller
// submits. Collect applies the built-in field validity (Required, Pattern)
// and then the per-form Schema, marking missing fields Invalid.
package form
