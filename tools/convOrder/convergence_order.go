package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/notargets/gofvm/analytic_solutions"
)

var (
	csvFile string
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file written by gofvm converge")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	studies, err := readCSV(csvFile)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	schemes := make([]string, 0, len(studies))
	for s := range studies {
		schemes = append(schemes, s)
	}
	sort.Strings(schemes)
	for _, s := range schemes {
		studies[s].Print()
	}
}

type ConvergenceStudy struct {
	scheme       string
	numPTS       []int
	dx           []float64
	L1, L2, LInf []float64
}

func NewConvergenceStudy(scheme string) *ConvergenceStudy {
	return &ConvergenceStudy{
		scheme: scheme,
	}
}

func (cs *ConvergenceStudy) Add(numPTS int, dx, L1, L2, LInf float64) {
	cs.numPTS = append(cs.numPTS, numPTS)
	cs.dx = append(cs.dx, dx)
	cs.L1 = append(cs.L1, L1)
	cs.L2 = append(cs.L2, L2)
	cs.LInf = append(cs.LInf, LInf)
}

func (cs *ConvergenceStudy) Print() {
	var (
		o1   = analytic_solutions.ObservedOrder(cs.dx, cs.L1)
		o2   = analytic_solutions.ObservedOrder(cs.dx, cs.L2)
		oInf = analytic_solutions.ObservedOrder(cs.dx, cs.LInf)
	)
	fmt.Printf("Scheme = %s\n", cs.scheme)
	for i := range cs.numPTS {
		if i == 0 {
			fmt.Printf("%d, %v, %v, %v\n", cs.numPTS[i], cs.L1[i], cs.L2[i], cs.LInf[i])
			continue
		}
		fmt.Printf("%d, %v, %v, %v, order = %5.2f, %5.2f, %5.2f\n",
			cs.numPTS[i], cs.L1[i], cs.L2[i], cs.LInf[i], o1[i-1], o2[i-1], oInf[i-1])
	}
}

func readCSV(csvFile string) (studies map[string]*ConvergenceStudy, err error) {
	var (
		records [][]string
		f       *os.File
		ok      bool
		cs      *ConvergenceStudy
		vals    [4]float64
		npts    int
	)
	studies = make(map[string]*ConvergenceStudy)
	if f, err = os.Open(csvFile); err != nil {
		return
	}
	defer f.Close()
	r := csv.NewReader(bufio.NewReader(f))
	if records, err = r.ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) < 6 {
			err = fmt.Errorf("%s line %d: want 6 fields, have %d", csvFile, i+1, len(rec))
			return
		}
		scheme := rec[0]
		if npts, err = strconv.Atoi(rec[1]); err != nil {
			return
		}
		for j := range vals {
			if vals[j], err = strconv.ParseFloat(rec[j+2], 64); err != nil {
				return
			}
		}
		if cs, ok = studies[scheme]; !ok {
			cs = NewConvergenceStudy(scheme)
			studies[scheme] = cs
		}
		cs.Add(npts, vals[0], vals[1], vals[2], vals[3])
	}
	return
}
