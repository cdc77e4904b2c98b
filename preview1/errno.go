package preview1

import "fmt"

// Errno is a WASI preview1 error code as returned to the guest.
// The zero value means success.
type Errno uint32

// The complete preview1 errno space. Values are fixed by the ABI.
const (
	ErrnoSuccess        Errno = 0
	Errno2Big           Errno = 1
	ErrnoAcces          Errno = 2
	ErrnoAddrinuse      Errno = 3
	ErrnoAddrnotavail   Errno = 4
	ErrnoAfnosupport    Errno = 5
	ErrnoAgain          Errno = 6
	ErrnoAlready        Errno = 7
	ErrnoBadf           Errno = 8
	ErrnoBadmsg         Errno = 9
	ErrnoBusy           Errno = 10
	ErrnoCanceled       Errno = 11
	ErrnoChild          Errno = 12
	ErrnoConnaborted    Errno = 13
	ErrnoConnrefused    Errno = 14
	ErrnoConnreset      Errno = 15
	ErrnoDeadlk         Errno = 16
	ErrnoDestaddrreq    Errno = 17
	ErrnoDom            Errno = 18
	ErrnoDquot          Errno = 19
	ErrnoExist          Errno = 20
	ErrnoFault          Errno = 21
	ErrnoFbig           Errno = 22
	ErrnoHostunreach    Errno = 23
	ErrnoIdrm           Errno = 24
	ErrnoIlseq          Errno = 25
	ErrnoInprogress     Errno = 26
	ErrnoIntr           Errno = 27
	ErrnoInval          Errno = 28
	ErrnoIo             Errno = 29
	ErrnoIsconn         Errno = 30
	ErrnoIsdir          Errno = 31
	ErrnoLoop           Errno = 32
	ErrnoMfile          Errno = 33
	ErrnoMlink          Errno = 34
	ErrnoMsgsize        Errno = 35
	ErrnoMultihop       Errno = 36
	ErrnoNametoolong    Errno = 37
	ErrnoNetdown        Errno = 38
	ErrnoNetreset       Errno = 39
	ErrnoNetunreach     Errno = 40
	ErrnoNfile          Errno = 41
	ErrnoNobufs         Errno = 42
	ErrnoNodev          Errno = 43
	ErrnoNoent          Errno = 44
	ErrnoNoexec         Errno = 45
	ErrnoNolck          Errno = 46
	ErrnoNolink         Errno = 47
	ErrnoNomem          Errno = 48
	ErrnoNomsg          Errno = 49
	ErrnoNoprotoopt     Errno = 50
	ErrnoNospc          Errno = 51
	ErrnoNosys          Errno = 52
	ErrnoNotconn        Errno = 53
	ErrnoNotdir         Errno = 54
	ErrnoNotempty       Errno = 55
	ErrnoNotrecoverable Errno = 56
	ErrnoNotsock        Errno = 57
	ErrnoNotsup         Errno = 58
	ErrnoNotty          Errno = 59
	ErrnoNxio           Errno = 60
	ErrnoOverflow       Errno = 61
	ErrnoOwnerdead      Errno = 62
	ErrnoPerm           Errno = 63
	ErrnoPipe           Errno = 64
	ErrnoProto          Errno = 65
	ErrnoProtonosupport Errno = 66
	ErrnoPrototype      Errno = 67
	ErrnoRange          Errno = 68
	ErrnoRofs           Errno = 69
	ErrnoSpipe          Errno = 70
	ErrnoSrch           Errno = 71
	ErrnoStale          Errno = 72
	ErrnoTimedout       Errno = 73
	ErrnoTxtbsy         Errno = 74
	ErrnoXdev           Errno = 75
	ErrnoNotcapable     Errno = 76
)

// errnoStrings maps each errno to its name and strerror-style message.
var errnoStrings = [...]struct {
	name string
	msg  string
}{
	{"success", "no error occurred"},
	{"2big", "argument list too long"},
	{"acces", "permission denied"},
	{"addrinuse", "address in use"},
	{"addrnotavail", "address not available"},
	{"afnosupport", "address family not supported"},
	{"again", "resource unavailable, try again"},
	{"already", "connection already in progress"},
	{"badf", "bad file descriptor"},
	{"badmsg", "bad message"},
	{"busy", "device or resource busy"},
	{"canceled", "operation canceled"},
	{"child", "no child processes"},
	{"connaborted", "connection aborted"},
	{"connrefused", "connection refused"},
	{"connreset", "connection reset"},
	{"deadlk", "resource deadlock would occur"},
	{"destaddrreq", "destination address required"},
	{"dom", "mathematics argument out of domain of function"},
	{"dquot", "reserved"},
	{"exist", "file exists"},
	{"fault", "bad address"},
	{"fbig", "file too large"},
	{"hostunreach", "host is unreachable"},
	{"idrm", "identifier removed"},
	{"ilseq", "illegal byte sequence"},
	{"inprogress", "operation in progress"},
	{"intr", "interrupted function"},
	{"inval", "invalid argument"},
	{"io", "I/O error"},
	{"isconn", "socket is connected"},
	{"isdir", "is a directory"},
	{"loop", "too many levels of symbolic links"},
	{"mfile", "file descriptor value too large"},
	{"mlink", "too many links"},
	{"msgsize", "message too large"},
	{"multihop", "reserved"},
	{"nametoolong", "filename too long"},
	{"netdown", "network is down"},
	{"netreset", "connection aborted by network"},
	{"netunreach", "network unreachable"},
	{"nfile", "too many files open in system"},
	{"nobufs", "no buffer space available"},
	{"nodev", "no such device"},
	{"noent", "no such file or directory"},
	{"noexec", "executable file format error"},
	{"nolck", "no locks available"},
	{"nolink", "reserved"},
	{"nomem", "not enough space"},
	{"nomsg", "no message of the desired type"},
	{"noprotoopt", "protocol not available"},
	{"nospc", "no space left on device"},
	{"nosys", "function not supported"},
	{"notconn", "the socket is not connected"},
	{"notdir", "not a directory or a symbolic link to a directory"},
	{"notempty", "directory not empty"},
	{"notrecoverable", "state not recoverable"},
	{"notsock", "not a socket"},
	{"notsup", "not supported, or operation not supported on socket"},
	{"notty", "inappropriate I/O control operation"},
	{"nxio", "no such device or address"},
	{"overflow", "value too large to be stored in data type"},
	{"ownerdead", "previous owner died"},
	{"perm", "operation not permitted"},
	{"pipe", "broken pipe"},
	{"proto", "protocol error"},
	{"protonosupport", "protocol not supported"},
	{"prototype", "protocol wrong type for socket"},
	{"range", "result too large"},
	{"rofs", "read-only file system"},
	{"spipe", "invalid seek"},
	{"srch", "no such process"},
	{"stale", "reserved"},
	{"timedout", "connection timed out"},
	{"txtbsy", "text file busy"},
	{"xdev", "cross-device link"},
	{"notcapable", "capabilities insufficient"},
}

// Name returns the short preview1 name of the errno, e.g. "badf".
func (e Errno) Name() string {
	if int(e) < len(errnoStrings) {
		return errnoStrings[e].name
	}
	return fmt.Sprintf("errno(%d)", uint32(e))
}

// String returns a human-readable description, e.g. "badf: bad file descriptor".
func (e Errno) String() string {
	if int(e) < len(errnoStrings) {
		s := errnoStrings[e]
		return s.name + ": " + s.msg
	}
	return fmt.Sprintf("errno(%d): unknown error", uint32(e))
}
