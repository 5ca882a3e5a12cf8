package odcon

import (
	"fmt"
	"io"
	"strings"

	"github.com/edgeparam/odict/pkg/od"
	"github.com/edgeparam/odict/pkg/odfmt"
	"github.com/edgeparam/odict/pkg/odlog"
)

// stagingSize is the stack buffer used to stage one value for get/set.
const stagingSize = 64

// Console executes dictionary commands against an injected writer.
type Console struct {
	dict   *od.Dictionary
	out    io.Writer
	logger odlog.Logger
}

// New creates a console over the dictionary. logger may be nil.
func New(dict *od.Dictionary, out io.Writer, logger odlog.Logger) *Console {
	if logger == nil {
		logger = odlog.NoopLogger{}
	}
	return &Console{dict: dict, out: out, logger: logger}
}

// Execute runs one command line. Errors are rendered to the output
// writer; the command loop keeps running regardless.
func (c *Console) Execute(line string) {
	input := strings.TrimSpace(line)
	if input == "" {
		return
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		c.printHelp()

	case "ls":
		c.cmdList(args)

	case "get", "g":
		c.cmdGet(args)

	case "set", "s":
		c.cmdSet(args)

	default:
		fmt.Fprintf(c.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, `
Dictionary Commands:
  ls                   - List all objects
  ls <name>            - Show one object's layout and values
  get <obj>[.<sub>]    - Read a value
  set <obj>[.<sub>] = <value> - Write a value
  help                 - Show this help
  quit                 - Exit

  Path Format:
    object.subobject - e.g., status.temp, calibration.gain
    Separators '.', ':' and '/' are interchangeable`)
}

// hidden reports whether a permission level is excluded from plain
// listings.
func hidden(p od.Permissions) bool {
	return p == od.PermFactoryHidden || p == od.PermHidden
}

// cmdList handles the ls command.
func (c *Console) cmdList(args []string) {
	if len(args) > 0 {
		c.listObject(args[0])
		return
	}

	fmt.Fprintln(c.out, "\nAddress  Name              Shape                     Access")
	fmt.Fprintln(c.out, "-------------------------------------------------------------------")
	for _, item := range c.dict.Items() {
		info := item.Object.Info()
		if hidden(info.Perm) {
			continue
		}
		fmt.Fprintf(c.out, "0x%04X   %-17s %-25s %s\n",
			item.Address, item.Object.Name(), odfmt.DescribeInfo(info), info.Perm)
	}
	fmt.Fprintln(c.out)
}

func (c *Console) listObject(name string) {
	q, err := c.query(name)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	obj := q.Item.Object

	fmt.Fprintf(c.out, "\n0x%04X %s\n", q.Item.Address, obj.Name())
	fmt.Fprintf(c.out, "  Shape:  %s\n", odfmt.DescribeInfo(q.Info))
	fmt.Fprintf(c.out, "  Access: %s\n", q.Info.Perm)
	fmt.Fprintf(c.out, "  Value:  %s\n", odfmt.DescribeObject(obj))
}

// cmdGet handles the get command.
func (c *Console) cmdGet(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "Usage: get <obj>[.<sub>]")
		fmt.Fprintln(c.out, "  Example: get status.temp")
		return
	}

	q, err := c.query(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	obj := q.Item.Object

	sub, ok := q.Sel.SubIndex()
	if !ok {
		if q.Info.Class != od.ClassVariable {
			fmt.Fprintf(c.out, "%s:%s\n", obj.Name(), odfmt.DescribeObject(obj))
			return
		}
		sub = 0
	}

	var buf [stagingSize]byte
	n, err := obj.Get(sub, buf[:])
	c.logger.Log(odlog.Event{
		Op:      odlog.OpRead,
		Address: q.Item.Address,
		Sub:     sub,
		Object:  obj.Name(),
		Err:     err,
	}.Now())
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(c.out, "%s = %s\n", displayName(q), odfmt.FormatValue(q.Type(), buf[:n]))
}

// cmdSet handles the set command.
func (c *Console) cmdSet(args []string) {
	path, value, ok := splitAssignment(strings.Join(args, " "))
	if !ok {
		fmt.Fprintln(c.out, "Usage: set <obj>[.<sub>] = <value>")
		fmt.Fprintln(c.out, "  Example: set status.temp = 85")
		return
	}

	q, err := c.query(path)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	obj := q.Item.Object

	sub, ok := q.Sel.SubIndex()
	if !ok {
		if q.Info.Class != od.ClassVariable {
			fmt.Fprintf(c.out, "Error: %s is a %s; select one element\n", obj.Name(), q.Info.Class)
			return
		}
		sub = 0
	}

	data, err := odfmt.ParseValue(q.Type(), value)
	if err != nil {
		fmt.Fprintf(c.out, "Invalid value %q for %s: %v\n", value, q.Type(), err)
		return
	}

	err = obj.Set(sub, data)
	c.logger.Log(odlog.Event{
		Op:      odlog.OpWrite,
		Address: q.Item.Address,
		Sub:     sub,
		Object:  obj.Name(),
		Err:     err,
	}.Now())
	if err != nil {
		fmt.Fprintf(c.out, "Write failed: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "OK")
}

func (c *Console) query(text string) (od.Query, error) {
	q, err := c.dict.Query(text)
	c.logger.Log(odlog.Event{
		Op:     odlog.OpQuery,
		Detail: text,
		Object: q.ObjectName,
		Err:    err,
	}.Now())
	return q, err
}

// splitAssignment separates "path = value" into its halves; the '=' is
// optional, a bare "path value" works too.
func splitAssignment(text string) (path, value string, ok bool) {
	if i := strings.IndexByte(text, '='); i >= 0 {
		path = strings.TrimSpace(text[:i])
		value = strings.TrimSpace(text[i+1:])
		return path, value, path != "" && value != ""
	}
	parts := strings.Fields(text)
	if len(parts) < 2 {
		return "", "", false
	}
	return parts[0], strings.Join(parts[1:], " "), true
}

func displayName(q od.Query) string {
	if q.SubName != "" {
		return q.ObjectName + "." + q.SubName
	}
	return q.ObjectName
}
