package iso8583

import "golang.org/x/text/encoding/charmap"

// ebcdicEncode transcodes ASCII text (digits, in every caller of this
// function) into IBM code page 1148, the EBCDIC variant used for MTI,
// bitmap, and field-value "E" format throughout this codec.
func ebcdicEncode(dst, src []byte) error {
	nDst, _, err := charmap.CodePage1148.NewEncoder().Transform(dst, src, true)
	if err != nil {
		return err
	}
	_ = nDst
	return nil
}

// ebcdicDecode transcodes IBM code page 1148 bytes back into ASCII.
func ebcdicDecode(dst, src []byte) error {
	nDst, _, err := charmap.CodePage1148.NewDecoder().Transform(dst, src, true)
	if err != nil {
		return err
	}
	_ = nDst
	return nil
}
