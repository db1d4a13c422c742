package cmd

// guardNegativeArgs keeps arguments such as "-5" away from the flag parser
// by inserting "--" in front of the first one.
func guardNegativeArgs(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if looksLikeNegativeNumber(arg) {
			guarded := make([]string, 0, len(args)+1)
			guarded = append(guarded, args[:i]...)
			guarded = append(guarded, "--")
			return append(guarded, args[i:]...)
		}
	}

	return args
}

func looksLikeNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}

	c := arg[1]
	return (c >= '0' && c <= '9') || c == '.'
}
