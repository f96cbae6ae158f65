package jsgen

// preamble is the fixed runtime prelude prepended to every assembled
// unit: the debug formatter used by {:?} placeholders, the abort and
// assert helpers, and the program-argument shim the CLI feeds through a
// global.
const preamble = `function debug_repr(value) {
  if (value === null || value === undefined) return "None";
  if (typeof value === "string") return JSON.stringify(value);
  if (Array.isArray(value)) return "[" + value.map(debug_repr).join(", ") + "]";
  if (typeof value === "object") {
    if (typeof value.toJSON === "function") return JSON.stringify(value.toJSON());
    return JSON.stringify(value);
  }
  return String(value);
}
function panic(message) {
  throw new Error("panic: " + message);
}
function assert(condition, message) {
  if (!condition) {
    panic(message || "assertion failed");
  }
}
const env = {
  args: function() {
    return typeof __program_args !== "undefined" ? __program_args : [];
  }
};
`

// Preamble returns the runtime prelude text.
func Preamble() string {
	return preamble
}
