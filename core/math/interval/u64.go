// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package interval holds sorted, non-overlapping lists of half-open uint64
// spans. The replayer uses them for mapped buffer flush ranges and client
// side vertex array ranges.
package interval

import "sort"

// U64Span is the half-open interval [Start, End).
type U64Span struct {
	Start uint64
	End   uint64
}

// U64Range is the interval of Count values starting at First.
type U64Range struct {
	First uint64
	Count uint64
}

// Span returns r as a U64Span.
func (r U64Range) Span() U64Span { return U64Span{Start: r.First, End: r.First + r.Count} }

// Range returns s as a U64Range.
func (s U64Span) Range() U64Range { return U64Range{First: s.Start, Count: s.End - s.Start} }

// Len returns the number of values in the span.
func (s U64Span) Len() uint64 { return s.End - s.Start }

// Overlaps returns true if s and o share at least one value.
func (s U64Span) Overlaps(o U64Span) bool { return s.Start < o.End && o.Start < s.End }

// U64SpanList is a sorted list of disjoint spans.
type U64SpanList []U64Span

// first returns the index of the first span for which pred is true, assuming
// pred is false then true across the list.
func (l U64SpanList) first(pred func(U64Span) bool) int {
	return sort.Search(len(l), func(i int) bool { return pred(l[i]) })
}

// Merge adds span to the list, joining it with every span it overlaps or
// touches. It returns the index of the resulting span.
func (l *U64SpanList) Merge(span U64Span) int {
	lo := l.first(func(t U64Span) bool { return span.Start <= t.End })
	hi := l.first(func(t U64Span) bool { return span.End < t.Start })
	if lo < hi {
		if s := (*l)[lo].Start; s < span.Start {
			span.Start = s
		}
		if e := (*l)[hi-1].End; e > span.End {
			span.End = e
		}
	}
	l.splice(lo, hi, span)
	return lo
}

// Remove cuts span out of the list, splitting spans that straddle its ends.
func (l *U64SpanList) Remove(span U64Span) {
	lo := l.first(func(t U64Span) bool { return span.Start < t.End })
	hi := l.first(func(t U64Span) bool { return span.End <= t.Start })
	if lo >= hi {
		return
	}
	var keep []U64Span
	if first := (*l)[lo]; first.Start < span.Start {
		keep = append(keep, U64Span{first.Start, span.Start})
	}
	if last := (*l)[hi-1]; span.End < last.End {
		keep = append(keep, U64Span{span.End, last.End})
	}
	l.splice(lo, hi, keep...)
}

func (l *U64SpanList) splice(lo, hi int, with ...U64Span) {
	tail := append([]U64Span{}, (*l)[hi:]...)
	*l = append(append((*l)[:lo], with...), tail...)
}

// IndexOf returns the index of the span containing value, or -1.
func (l U64SpanList) IndexOf(value uint64) int {
	i := l.first(func(t U64Span) bool { return value < t.End })
	if i < len(l) && l[i].Start <= value {
		return i
	}
	return -1
}

// Intersect returns the parts of the list that fall inside span.
func (l U64SpanList) Intersect(span U64Span) U64SpanList {
	lo := l.first(func(t U64Span) bool { return span.Start < t.End })
	var out U64SpanList
	for i := lo; i < len(l) && l[i].Start < span.End; i++ {
		s := l[i]
		if s.Start < span.Start {
			s.Start = span.Start
		}
		if s.End > span.End {
			s.End = span.End
		}
		out = append(out, s)
	}
	return out
}

// Bounds returns the smallest span covering the whole list.
func (l U64SpanList) Bounds() U64Span {
	if len(l) == 0 {
		return U64Span{}
	}
	return U64Span{l[0].Start, l[len(l)-1].End}
}
