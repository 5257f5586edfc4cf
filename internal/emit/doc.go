// Package emit serializes a validated LED group model into the generated
// C++ source consumed by the LED manager.
//
// Emission happens in two steps. Build turns the validated groups into a
// Table, a plain description of what the generated map contains. Render
// formats a Table as static-initializer text according to a Dialect. The
// output of Render is a pure function of its inputs: the same Table and
// Dialect always produce the same bytes.
package emit
