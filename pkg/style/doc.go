// Package style renders amlpack's terminal reports.
//
// Styles are named and defined in a YAML sheet (styles.yaml, embedded)
// with adaptive colors that follow the terminal's light or dark
// background. A Sheet binds the styles to one output writer; in plain mode
// every style renders as unstyled text.
package style
