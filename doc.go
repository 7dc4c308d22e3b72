/*
Package xmlstring provides miscellaneous XML-specific functions over raw bytes.

The main entry point is IsXML, which quickly guesses whether a buffer holds an XML document.
The guess is deliberately shallow: only the first byte is looked at, and it must be '<'.
This is the most trivial fragment of the heuristic described in
https://www.w3.org/TR/REC-xml/#sec-guessing and it will not grow into a validator.

Input is always a byte slice as read from a file or a socket, before any charset decoding.
Sniff exists for callers that only hold an interface{} value, and it refuses decoded strings
instead of silently converting them.

All functions are pure and safe for concurrent use.
*/
package xmlstring
