package catalog

// Kind identifies a recognised command-line option.
type Kind int

const (
	// Unrecognized is returned for any token missing from the table.
	Unrecognized Kind = iota
	Threads
	Nagle
	ReceiveBufferSize
	SendBufferSize
	Connections
	ConnectTimeout
	ConnectionLifetime
	WebSocket
	Help
	Version
	Profile
	LogLevel
	LogFormat
)

// Option describes one entry of the catalog.
type Option struct {
	Kind  Kind
	Names []string // short name first, long name last
	Value string   // placeholder shown in usage; empty for switches
	Usage string
}

// Long returns the long name of the option.
func (o Option) Long() string {
	return o.Names[len(o.Names)-1]
}

// TakesValue reports whether the option expects a value.
func (o Option) TakesValue() bool {
	return o.Value != ""
}

var options = []Option{
	{Kind: Threads, Names: []string{"t", "threads"}, Value: "<n>", Usage: "Number of worker threads driving connections."},
	{Kind: Nagle, Names: []string{"n", "nagle"}, Value: "<ON|OFF>", Usage: "Enable or disable Nagle's algorithm."},
	{Kind: ReceiveBufferSize, Names: []string{"rb", "receivebuffersize"}, Value: "<bytes>", Usage: "Socket receive buffer size."},
	{Kind: SendBufferSize, Names: []string{"sb", "sendbuffersize"}, Value: "<bytes>", Usage: "Socket send buffer size."},
	{Kind: Connections, Names: []string{"c", "connections"}, Value: "<n>", Usage: "Number of connections to open."},
	{Kind: ConnectTimeout, Names: []string{"ct", "connecttimeout"}, Value: "<ms>", Usage: "Connect timeout in milliseconds."},
	{Kind: ConnectionLifetime, Names: []string{"cl", "connectionlifetime"}, Value: "<ms>", Usage: "How long each connection is kept open, in milliseconds."},
	{Kind: WebSocket, Names: []string{"ws", "websocket"}, Usage: "Upgrade each connection with a WebSocket handshake."},
	{Kind: Profile, Names: []string{"p", "profile"}, Value: "<file.hcl>", Usage: "Read option values and endpoints from an HCL profile."},
	{Kind: LogLevel, Names: []string{"loglevel"}, Value: "<debug|info|warn|error>", Usage: "Diagnostic log level."},
	{Kind: LogFormat, Names: []string{"logformat"}, Value: "<text|json>", Usage: "Diagnostic log format."},
	{Kind: Help, Names: []string{"h", "help"}, Usage: "Print this help and exit."},
	{Kind: Version, Names: []string{"v", "version"}, Usage: "Print the version and exit."},
}

var (
	byName = make(map[string]Kind)
	byKind = make(map[Kind]Option)
)

func init() {
	for _, opt := range options {
		if _, dup := byKind[opt.Kind]; dup {
			panic("catalog: duplicate option kind " + opt.Long())
		}
		byKind[opt.Kind] = opt
		for _, name := range opt.Names {
			if _, dup := byName[name]; dup {
				panic("catalog: duplicate option name " + name)
			}
			byName[name] = opt.Kind
		}
	}
}

// Lookup returns the Kind registered for token, or Unrecognized.
func Lookup(token string) Kind {
	if kind, ok := byName[token]; ok {
		return kind
	}
	return Unrecognized
}

// Options returns a copy of the catalog in display order.
func Options() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

// OptionFor returns the catalog entry for kind.
func OptionFor(kind Kind) (Option, bool) {
	opt, ok := byKind[kind]
	return opt, ok
}

// TakesValue reports whether options of the given kind expect a value.
// Unrecognized kinds are treated as taking a value so a lexer consumes the
// token that follows them.
func TakesValue(kind Kind) bool {
	opt, ok := byKind[kind]
	if !ok {
		return true
	}
	return opt.TakesValue()
}

// SingleOptions lists every name whose option takes no value.
func SingleOptions() []string {
	var names []string
	for _, opt := range options {
		if !opt.TakesValue() {
			names = append(names, opt.Names...)
		}
	}
	return names
}

// String returns the long option name, or "unrecognized".
func (k Kind) String() string {
	if opt, ok := byKind[k]; ok {
		return opt.Long()
	}
	return "unrecognized"
}
