package mdpad

// Placeholder is seeded into the editor at startup when no file is given.
// It demonstrates fenced code blocks, tables, and strikethrough, so a new
// user sees the full conversion pipeline working immediately. Seeding it
// fires the editor's change notification, which triggers the first render.
const Placeholder = "```python\n" +
	"# Type your markdown here!\n" +
	"# Syntax highlighting is now active.\n" +
	"def hello(name):\n" +
	"    print(f'Hello, {name}!')\n" +
	"\n" +
	"hello('World')\n" +
	"```\n" +
	"\n" +
	"| Header 1 | Header 2 |\n" +
	"|----------|----------|\n" +
	"| Cell 1   | Cell 2   |\n" +
	"\n" +
	"- Tables\n" +
	"- ~~Strike-through~~\n" +
	"- And more!\n"
