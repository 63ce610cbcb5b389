package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password from the
// user's terminal without echo. A newline is printed after the read to keep
// the UI tidy.
func GetPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// getText prompts for a field, showing its current draft value; an empty
// answer keeps the current value.
func getText(reader *bufio.Reader, label, current string, w io.Writer) string {
	line, err := GetSimpleText(reader, fmt.Sprintf("%s [%s]", label, current), w)
	if err != nil || line == "" {
		return current
	}
	return line
}

// getInt is getText for numeric fields; unparsable input keeps the current
// value.
func getInt(reader *bufio.Reader, label string, current int, w io.Writer) int {
	line, err := GetSimpleText(reader, fmt.Sprintf("%s [%d]", label, current), w)
	if err != nil || line == "" {
		return current
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return current
	}
	return n
}
