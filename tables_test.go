package kittykey

import "testing"

import "github.com/stretchr/testify/assert"

func TestFuncNumToNameBijective(t *testing.T) {
	seen := make(map[string]int)
	for num, name := range FuncNumToName {
		if other, ok := seen[name]; ok {
			t.Fatalf("name %q mapped from both %d and %d", name, other, num)
		}
		seen[name] = num
	}
	assert.Equal(t, len(FuncNumToName), len(seen))
}

func TestCsiNumToFuncNumBijective(t *testing.T) {
	seen := make(map[int]int)
	for csi, fn := range CsiNumToFuncNum {
		if other, ok := seen[fn]; ok {
			t.Fatalf("func num %d mapped from both csi %d and %d", fn, other, csi)
		}
		seen[fn] = csi
	}
	assert.Equal(t, len(CsiNumToFuncNum), len(seen))
}

func TestLetterTrailerToCsiNumBijective(t *testing.T) {
	seen := make(map[int]byte)
	for trailer, csi := range LetterTrailerToCsiNum {
		if other, ok := seen[csi]; ok {
			t.Fatalf("csi num %d mapped from both trailer %q and %q", csi, other, trailer)
		}
		seen[csi] = trailer
	}
	assert.Equal(t, len(LetterTrailerToCsiNum), len(seen))
}

func TestFuncNumForName(t *testing.T) {
	n, ok := funcNumForName("ENTER")
	assert.True(t, ok)
	assert.Equal(t, 57345, n)

	_, ok = funcNumForName("NOT_A_KEY")
	assert.False(t, ok)
}

func TestCsiNumberForName(t *testing.T) {
	assert.Equal(t, 0, csiNumberForName(""))
	assert.Equal(t, 13, csiNumberForName("ENTER"))
	assert.Equal(t, 11, csiNumberForName("F1"))
	assert.Equal(t, int('a'), csiNumberForName("a"))
	assert.Equal(t, int('#'), csiNumberForName("#"))
}
