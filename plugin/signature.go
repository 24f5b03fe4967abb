package plugin

// CommandName is the single command this plugin registers with the engine.
const CommandName = "from posix"

// commandDescription is the headline shown by help and plugin listings.
const commandDescription = "Convert POSIX export statements to Nushell $env assignments"

// signatures returns the plugin's command declarations. There is exactly
// one: a string-to-string filter in the formats category, documented with
// the same examples users see from `help from posix`.
func signatures() []Signature {
	unknown := Span{}

	return []Signature{
		{
			Sig: CommandSignature{
				Name:               CommandName,
				Description:        commandDescription,
				SearchTerms:        []string{"env", "export", "sh", "dotenv"},
				RequiredPositional: []any{},
				OptionalPositional: []any{},
				InputOutputTypes:   [][2]any{{"String", "String"}},
				Named: []NamedFlag{
					{
						Long:  "help",
						Short: "h",
						Desc:  "Display the help message for this command",
					},
				},
				IsFilter: true,
				Category: "Formats",
			},
			Examples: []Example{
				{
					Example:     `'export FOO=bar' | from posix`,
					Description: "Convert a single export statement",
					Result:      stringValue("$env.FOO = bar", unknown),
				},
				{
					Example:     `'export FOO=bar && export BAZ=qux' | from posix`,
					Description: "Convert multiple exports on the same line",
					Result:      stringValue("$env.FOO = bar\n$env.BAZ = qux", unknown),
				},
				{
					Example:     `'export PATH="/usr/bin:/bin"' | from posix`,
					Description: "Convert export with quoted value",
					Result:      stringValue(`$env.PATH = "/usr/bin:/bin"`, unknown),
				},
			},
		},
	}
}
