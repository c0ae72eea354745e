package printer

// Accessors for the external test package. The tests live in package
// printer_test because they build images via internal/testutil, which
// depends on stack and hence (through print.go) on this package.

type JSONImage = jsonImage

var Preview = preview
