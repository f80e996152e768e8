package trigpi

import (
	"math"
	"testing"

	"github.com/ajroetker/go-trigpi/platform"
)

var benchSink float64

func BenchmarkSinPi(b *testing.B) {
	inputs := make([]float64, 1024)
	for i := range inputs {
		inputs[i] = float64(i)*0.37 - 150
	}

	b.Run("SinPi/fma="+platform.CurrentFMA().String(), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			benchSink += SinPi(inputs[i&1023])
		}
	})

	b.Run("math.Sin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			benchSink += math.Sin(math.Pi * inputs[i&1023])
		}
	})
}

func BenchmarkCosPi(b *testing.B) {
	inputs := make([]float64, 1024)
	for i := range inputs {
		inputs[i] = float64(i)*0.37 - 150
	}

	b.Run("CosPi/fma="+platform.CurrentFMA().String(), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			benchSink += CosPi(inputs[i&1023])
		}
	})

	b.Run("math.Cos", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			benchSink += math.Cos(math.Pi * inputs[i&1023])
		}
	})
}

func BenchmarkSinCosPi(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s, c := SinCosPi(float64(i&1023) * 0.37)
		benchSink += s + c
	}
}

func BenchmarkSinPi_Parallel(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		var sink float64
		x := 0.0
		for pb.Next() {
			sink += SinPi(x)
			x += 0.37
		}
		_ = sink
	})
}
