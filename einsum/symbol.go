package einsum

const symbolBase = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	symbolOffset   = 140
	surrogateStart = 0xD800
	surrogateSpan  = 0x800
)

// Symbol returns the einsum symbol of index i: a–z, A–Z for the first 52,
// then consecutive Unicode code points from U+00C0, jumping over the
// surrogate range. Distinct indices give distinct symbols.
func Symbol(i int) string {
	if i < len(symbolBase) {
		return symbolBase[i : i+1]
	}
	r := rune(i + symbolOffset)
	if r >= surrogateStart {
		r += surrogateSpan
	}
	return string(r)
}
