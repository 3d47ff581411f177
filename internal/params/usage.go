package params

import (
	"fmt"
	"io"
)

// UsageText is the help screen. It contains no template actions, so it can
// also serve as the command's help template.
const UsageText = `pomsync - copy the package.json version into a Pom.xml <version> tag

Usage:
  pomsync [-n] [-p <dir>] [-i <index>]
  pomsync [-n] [--] <source> <target> <index>
  pomsync -h | -help | --help | -H

Discovery mode (default):
  Searches <dir> (or the current directory) for files whose names contain
  "package.json" and "Pom.xml", then copies the version over.

Direct mode:
  Uses the given source and target files as they are. Put "--" in front
  of a path that starts with "-"; everything after it is a file argument.

Options:
  -p, --path <dir>     Directory to search (default: current directory)
  -i, --index <n>      Zero-based <version> occurrence to replace, 0-255 (default: 0)
  -n, --dry-run        Show the change without writing the target file
      --no-color       Disable colored output
  -h, --help           Show this help

Examples:
  pomsync
  pomsync -p /home/my_user/java_project/ -i 1
  pomsync web/package.json server/Pom.xml 2
  pomsync -n -- -legacy/package.json server/Pom.xml 0
`

// PrintUsage writes the usage text to out.
func PrintUsage(out io.Writer) {
	_, _ = fmt.Fprint(out, UsageText)
}
