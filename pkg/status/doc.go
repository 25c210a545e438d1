/*
Package status renders batch progress and the final summary for renamerc.

	+-------------+
	|  Reporter   |
	| (Console)   |
	+------+------+
	       |
	 +-----+-----+
	 |           |
	+-+--+    +--+--+
	|User|    |zlog |
	|Out |    |Debug|
	+----+    +-----+

🎯 Purpose:
- Prints per-group discovery counts before each pass
- Prints one [OK] line per rewritten file (path relative to project root)
- Prints one error line per file that failed processing
- Prints the final summary block with per-group and total counts

🔄 Flow:
1. Operation starts a group -> "Processing N <group> files..."
2. Each rewritten file -> "  [OK] <relpath>"
3. Each failed file -> "Error processing <path>: <detail>"
4. Operation finishes -> divider, [DONE] banner, tallies, total

📝 Design Philosophy:
Console output is the user contract and stays plain and stable; everything
else (per-file debug detail, error context) is mirrored to zerolog so the
console never needs a verbosity flag. The reporter owns all counting so the
operation never tracks state of its own.
*/
package status
