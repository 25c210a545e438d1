/*
Package operation implements the batch rename/replace passes for renamerc.

	+-------------+
	|  Operation  |
	| (Core Logic)|
	+------+------+
	       |
	+------+------+
	|   Process   |
	| (Rewrite)   |
	+------+------+

🎯 Purpose:
- Orchestrates the three file group passes (source, markup, other)
- Applies the ordered replacement rule set to each discovered file
- Rewrites files in place only when their content changed

🔄 Flow:
1. Receives file paths from discover
2. Applies the rule set via text.Replacer
3. Writes changed content back in place, keeping the file mode
4. Reports progress and tallies via status.Reporter

⚡ Key Responsibilities:
- Pass ordering and orchestration
- Per-file error containment (a bad file never aborts the batch)
- Converting config replacements into a validated rule set

📝 Design Philosophy:
The operation is a single linear batch job: no retry, no resumption, no
partial-completion tracking beyond the printed summary. Each file's
read-modify-write is fully independent, so the runner may execute the whole
batch on a background goroutine without changing observable results. Every
per-file failure is a FileResult value, not a panic or an abort: it surfaces
as one printed error line and the batch always reaches its summary.
*/
package operation
