/*
Package chunk holds the pieces shared by every record codec in a Metal Gear
resource container: the error taxonomy and a bounded reader and writer over
an in-memory record.

The whole container is buffered before parsing because several records
address their payload through offsets relative to a table end, so every
codec works on a byte slice rather than a stream.
*/
package chunk
