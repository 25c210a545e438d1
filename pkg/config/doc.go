/*
Package config holds the immutable run configuration for renamerc.

	+-------------+
	|   Config    |
	| (Settings)  |
	+------+------+
	       |
	 +-----+-----+
	 |           |
	+-+---+   +--+---------+
	|File |   |Replacement |
	|Group|   |  Rule Set  |
	+-----+   +------------+

🎯 Purpose:
- Defines the file groups (name, search root, extension patterns)
- Defines the ordered replacement rule set
- Ships the compiled-in default: the Nebula -> TermSnap rename

📝 Design Philosophy:
There is deliberately no configuration file and no flag surface for patterns:
the rule set is part of the program. The configuration is still an explicit
value passed into the operation, not package-level state, so tests can build
their own configurations without touching the default.

The rule ordering is load-bearing. Rules apply sequentially against the
accumulating result, so longer literals must precede shorter ones that they
contain; Validate and text.ValidateRules enforce the structural half of that
contract.
*/
package config
