package loader

import "errors"

// ErrScan indicates a line-oriented read from the underlying reader
// failed for a reason other than end of input (the scanner's own error,
// surfaced via bufio.Scanner.Err after the scan loop completes).
var ErrScan = errors.New("loader: scan failed")
