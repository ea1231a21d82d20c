package lambda

// Version of the interpreter, shown in the REPL banner.
const Version = "0.3.1"
