package validate

import (
	"fmt"
	"io"
	"strings"

	"github.com/gatekit/gatekit/pkg/secerr"
)

// ReadLine reads characters from in until a line terminator ('\n' or '\r')
// or end of stream, enforcing a hard ceiling of max characters.
//
// At end of stream with nothing accumulated it returns ok == false and no
// error. The ceiling check fires as soon as the count exceeds max, before
// the overflowing character is appended. Underlying I/O failures are
// wrapped into the same ValidationError kind as the overflow; the nested
// cause carries the transport fault.
func ReadLine(in io.Reader, max int) (line string, ok bool, err error) {
	if max <= 0 {
		return "", false, secerr.NewValidation("readline",
			"invalid input",
			fmt.Sprintf("readline must be asked for a positive number of characters, got %d", max))
	}

	var sb strings.Builder
	buf := make([]byte, 1)
	count := 0
	for {
		n, rerr := in.Read(buf)
		if n > 0 {
			c := buf[0]
			if c == '\n' || c == '\r' {
				return sb.String(), true, nil
			}
			count++
			if count > max {
				return "", false, secerr.NewValidation("readline",
					"invalid input",
					fmt.Sprintf("read more than the maximum %d characters allowed", max))
			}
			sb.WriteByte(c)
		}
		if rerr == io.EOF {
			if sb.Len() == 0 {
				return "", false, nil
			}
			return sb.String(), true, nil
		}
		if rerr != nil {
			return "", false, secerr.NewValidation("readline",
				"invalid input",
				fmt.Sprintf("problem reading from input stream: %v", rerr),
			).WithCause(rerr)
		}
	}
}
