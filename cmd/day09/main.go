// Day 9: Disk Fragmenter.
package main

import (
	"bytes"
	_ "embed"

	"github.com/nrhodes/aoc"
)

//go:embed main.go
var src []byte

func main() {
	aoc.ExtractSamples(src)
	aoc.Add(d9p1, d9p2)
	aoc.Main()
}

const free = -1

func readDiskMap() []byte {
	return bytes.TrimSpace(aoc.Input())
}

// blocks expands the disk map into one file ID (or free) per block.
func blocks(diskMap []byte) []int {
	var disk []int
	for i, c := range diskMap {
		id := free
		if i%2 == 0 {
			id = i / 2
		}
		for range aoc.DigVal(c) {
			disk = append(disk, id)
		}
	}
	return disk
}

// compactBlocks moves file blocks one at a time from the end of the
// disk into the leftmost free block.
func compactBlocks(disk []int) {
	l, r := 0, len(disk)-1
	for {
		for l < r && disk[l] != free {
			l++
		}
		for l < r && disk[r] == free {
			r--
		}
		if l >= r {
			return
		}
		disk[l], disk[r] = disk[r], free
	}
}

/*
want=1928

2333133121414131402
*/
func d9p1() any {
	disk := blocks(readDiskMap())
	compactBlocks(disk)
	sum := 0
	for pos, id := range disk {
		if id != free {
			sum += pos * id
		}
	}
	return sum
}

type span struct {
	id   int
	size int
}

// compactFiles lays the disk out as a list of spans and moves each
// whole file, highest ID first, into the leftmost free span that fits
// it, if that span is left of the file.
func compactFiles(diskMap []byte) *aoc.DList[span] {
	disk := aoc.NewDList[span]()
	var files []*aoc.Node[span]
	for i, c := range diskMap {
		size := aoc.DigVal(c)
		switch {
		case i%2 == 0:
			files = append(files, disk.PushBack(span{id: i / 2, size: size}))
		case size > 0:
			disk.PushBack(span{id: free, size: size})
		}
	}
	for id := len(files) - 1; id >= 0; id-- {
		f := files[id]
		if f.Value.size == 0 {
			continue
		}
		for n := disk.Front(); n != f; n = n.Next() {
			if n.Value.id != free || n.Value.size < f.Value.size {
				continue
			}
			disk.InsertBefore(f.Value, n)
			n.Value.size -= f.Value.size
			if n.Value.size == 0 {
				disk.Remove(n)
			}
			f.Value.id = free
			break
		}
	}
	return disk
}

func checksum(disk *aoc.DList[span]) int {
	sum, pos := 0, 0
	disk.Do(func(n *aoc.Node[span]) bool {
		if s := n.Value; s.id != free {
			for i := range s.size {
				sum += (pos + i) * s.id
			}
		}
		pos += n.Value.size
		return true
	})
	return sum
}

// want=2858
func d9p2() any {
	return checksum(compactFiles(readDiskMap()))
}
