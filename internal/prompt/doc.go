// Package prompt implements the watched-confirmation gate.
//
// The Confirmer interface is the injection point: the pipeline asks it one
// yes/no question per viewed row and blocks until an answer arrives. The
// terminal implementation reads answers line by line from an input stream;
// scripted implementations let tests and non-interactive runs answer
// deterministically.
package prompt
