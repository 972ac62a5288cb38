package pool

import "testing"

func TestNextPowerOfTwo(t *testing.T) {
	for n := 1; n <= 4096; n++ {
		p := nextPowerOfTwo(n)
		if p&(p-1) != 0 || p < n || (p > 1 && p/2 >= n) {
			t.Fatalf("nextPowerOfTwo(%d) = %d", n, p)
		}
	}
	if got := nextPowerOfTwo(MaxRingCapacity); got != MaxRingCapacity {
		t.Errorf("Expected %d, got %d", MaxRingCapacity, got)
	}
}

func TestRingBuffer_ZeroingReleasesSlots(t *testing.T) {
	r := MustRingBuffer[*int](4, WithZeroing())
	a, b, c := 1, 2, 3
	r.Push(&a)
	r.Push(&b)
	if _, err := r.Pop(); err != nil {
		t.Fatal(err)
	}
	if r.data[0] != nil {
		t.Error("Expected popped slot zeroed")
	}
	dst := make([]*int, 1)
	r.PopBatch(dst)
	if r.data[1] != nil {
		t.Error("Expected batch-popped slot zeroed")
	}
	r.Push(&c)
	r.Clear()
	for i, p := range r.data {
		if p != nil {
			t.Errorf("Expected slot %d zeroed after Clear", i)
		}
	}
}

func TestRingBuffer_RetainsStorageByDefault(t *testing.T) {
	r := MustRingBuffer[*int](4)
	a := 1
	r.Push(&a)
	r.Clear()
	if r.data[0] != &a {
		t.Error("Expected storage retained without WithZeroing")
	}
}
