package split

// Boundary tables identifying safe cut points across scripts. The CJK word
// breaks follow W3C JLReq cl-01; the CJK sentence endings follow cl-04/cl-05
// (JIS X 4051:2004). Both sets are compiled-in constants.

const standardWordBreaks = ",;: ()[]{}\t\n"

const cjkWordBreaks = "、，；：（）【】「」『』〔〕〈〉《》〖〗〘〙〚〛〝〞〟〰–—‘’‚‛“”„‟‹›"

const standardSentenceEndings = ".!?"

const cjkSentenceEndings = "。！？‼⁇⁈⁉"

var (
	sentenceEndings = runeSet(standardSentenceEndings + cjkSentenceEndings)
	wordBreaks      = runeSet(standardWordBreaks + cjkWordBreaks)
)

func runeSet(chars string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return set
}

func isSentenceEnding(r rune) bool {
	_, ok := sentenceEndings[r]
	return ok
}

func isWordBreak(r rune) bool {
	_, ok := wordBreaks[r]
	return ok
}
