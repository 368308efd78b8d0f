// alphabet.go — Confusable-free character set and sampling.
package captcha

// basicChars is the 54-symbol captcha alphabet: digits 2–9 plus letters,
// with easily confused glyphs removed (0/O, 1/I/l, etc.). Index order is
// part of the determinism contract — do not reorder.
const basicChars = "23456789ABCDEFGHJKMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz"

// sampleChars draws count characters from the alphabet in stream order.
func sampleChars(rnd *seedStream, count int) []rune {
	alphabet := []rune(basicChars)
	chars := make([]rune, count)
	for i := range chars {
		chars[i] = alphabet[rnd.next(uint32(len(alphabet)))]
	}
	return chars
}
