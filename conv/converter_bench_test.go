package conv

import (
    "testing"

    "github.com/viant/vector"
)

func BenchmarkConverter_AnySliceToVector(b *testing.B) {
    c := NewConverter(DefaultOptions())
    src := make([]interface{}, 256)
    for i := range src {
        src[i] = float64(i)
    }
    dest := vector.New()
    b.ReportAllocs()
    b.ResetTimer()
    for i := 0; i < b.N; i++ {
        if err := c.Convert(src, dest); err != nil {
            b.Fatal(err)
        }
    }
}

func BenchmarkConverter_StringToVector(b *testing.B) {
    c := NewConverter(DefaultOptions())
    src := "1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16"
    dest := vector.New()
    b.ReportAllocs()
    b.ResetTimer()
    for i := 0; i < b.N; i++ {
        if err := c.Convert(src, dest); err != nil {
            b.Fatal(err)
        }
    }
}
