package uuidv7

import (
	"testing"
	"time"
)

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := New(); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkGenerator_New(b *testing.B) {
	gen := NewGenerator()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := gen.New(); err != nil {
			b.Fatal(err)
		}
	}
}

// One generation context per goroutine, no shared lock.
func BenchmarkGenerator_PerGoroutine(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		gen := NewGenerator()
		for pb.Next() {
			if _, err := gen.New(); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkGenerator_NewBatch(b *testing.B) {
	gen := NewGenerator()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := gen.NewBatch(100); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_String(b *testing.B) {
	id := Must(New())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = id.String()
	}
}

func BenchmarkParse(b *testing.B) {
	s := "018bcfe5-6800-7abc-9def-0123456789ab"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_Compare(b *testing.B) {
	id1 := Must(New())
	id2 := Must(New())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = id1.Compare(id2)
	}
}

func BenchmarkExtractTimestamp(b *testing.B) {
	id := Must(New())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ExtractTimestamp(id); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTimeRange_Contains(b *testing.B) {
	now := time.Now()
	r := NewTimeRange(now.Add(-time.Hour), now)
	id := Must(New())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = r.Contains(id)
	}
}
