package engine

import "testing"

func BenchmarkEngineProcess(b *testing.B) {
	e := NewEngine()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Process(Keycode('t'), false, false)
		if i%10 == 0 {
			e.Clear()
		}
	}
}

func BenchmarkEngineProcessVietnameseWord(b *testing.B) {
	e := NewEngine()
	keys := []Keycode{'d', 'u', 'o', 'c', 'w', 'j'} // d-u-o-c, horn, nang tone

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, k := range keys {
			e.Process(k, false, false)
		}
		e.Clear()
	}
}

func BenchmarkAnalyse(b *testing.B) {
	buf := typeWord([]rune("nghieng"), MethodTelex, true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Analyse(buf, true)
	}
}

func BenchmarkValidate(b *testing.B) {
	buf := typeWord([]rune("truong"), MethodTelex, true)
	a := Analyse(buf, true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Validate(buf, a)
	}
}

func BenchmarkEnginePreedit(b *testing.B) {
	e := NewEngine()
	for _, k := range []Keycode{'d', 'u', 'o', 'c', 'w', 'j'} {
		e.Process(k, false, false)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Preedit()
	}
}

func BenchmarkEngineBackspace(b *testing.B) {
	e := NewEngine()
	word := []Keycode{'n', 'g', 'h', 'i', 'e', 'n', 'g'}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, k := range word {
			e.Process(k, false, false)
		}
		for j := 0; j < len(word); j++ {
			e.Process(KeycodeBackspace, false, false)
		}
	}
}
