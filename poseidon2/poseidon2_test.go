package poseidon2

import (
	"errors"
	"math/big"
	"strconv"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/vocdoni/zkkernels/internal/params"
)

func mustElement(t testing.TB, s string) fr.Element {
	t.Helper()
	var e fr.Element
	if _, err := e.SetString(s); err != nil {
		t.Fatalf("parse element: %v", err)
	}
	return e
}

func mustElements(t testing.TB, ss ...string) []fr.Element {
	t.Helper()
	out := make([]fr.Element, len(ss))
	for i, s := range ss {
		out[i] = mustElement(t, s)
	}
	return out
}

func sequence(n int) []fr.Element {
	out := make([]fr.Element, n)
	for i := range out {
		out[i].SetUint64(uint64(i))
	}
	return out
}

func randomState(t testing.TB, n int) []fr.Element {
	t.Helper()
	out := make([]fr.Element, n)
	for i := range out {
		if _, err := out[i].SetRandom(); err != nil {
			t.Fatal(err)
		}
	}
	return out
}

func requireStateEqual(t testing.TB, want, got []fr.Element) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if !got[i].Equal(&want[i]) {
			t.Fatalf("element %d mismatch\nexpected %s\ngot      %s", i, want[i].String(), got[i].String())
		}
	}
}

func TestKnownAnswerT2(t *testing.T) {
	expected := mustElements(t,
		"13120422956170837922441672802975889424559262309139960702680326932494325745547",
		"5923567162677888564808904842769941181302763723060647224839027357562627386465",
	)
	in := [2]fr.Element(sequence(2))
	out := T2Permutation(in)
	requireStateEqual(t, expected, out[:])
}

func TestKnownAnswerT3(t *testing.T) {
	expected := mustElements(t,
		"5297208644449048816064511434384511824916970985131888684874823260532015509555",
		"21816030159894113985964609355246484851575571273661473159848781012394295965040",
		"13940986381491601233448981668101586453321811870310341844570924906201623195336",
	)
	in := [3]fr.Element(sequence(3))
	out := T3Permutation(in)
	requireStateEqual(t, expected, out[:])
}

func TestKnownAnswerT4(t *testing.T) {
	expected := mustElements(t,
		"786823568102245344938517132468097745676732687098822989626730198331658606391",
		"16105493617470833344375945651585194737369509580406730765188791202038211593826",
		"2169165722086073256768101917994796590773204847633762971322389403847680713675",
		"20837792685223053096472825292260687493226094382304778455120670180090619921530",
	)
	in := [4]fr.Element(sequence(4))
	out := T4Permutation(in)
	requireStateEqual(t, expected, out[:])
}

func TestKnownAnswerT4Repeated(t *testing.T) {
	// The input exceeds the modulus and is reduced on parsing.
	v := mustElement(t, "69883186645750645681994932030385246708157590398620226325678277467989879383945")
	expected := mustElements(t,
		"19876884339830114960362368309895990346608408251258324603720941116757387714453",
		"5431247209421262354231150208254604337955649394486434112818062632325221806111",
		"687894710690940102848643567468393776669463870896767752431820942566056771027",
		"5764589378402668418492845603546890649188307247798553598873913830282103946561",
	)
	state := [4]fr.Element{v, v, v, v}
	T4PermutationInPlace(&state)
	requireStateEqual(t, expected, state[:])
}

// Regression vectors for the wider tables, input [0, 1, ..., t-1].
var wideVectors = map[int][]string{
	8: {
		"2274759387130796421107403432089308312406688112496403260378057491439702152271",
		"17625523036848829599101232646599789821294662426663429700609958590447462626162",
		"10715112144749097316993400656251342115869095909870813918284853990273092626446",
		"6255628502970751498637974144409957652127420361213816258351015523146947659347",
		"17333104223273696551280866337701028806016491158203773687701416736802776411625",
		"7958501257624120413661313788073209163228325804857337575978210686727675802187",
		"7468853895255309166632851020210125192739303103531941564187974516697513970083",
		"18309738064680690167895100612403231611247217051876368667174215784534021744568",
	},
	12: {
		"2094057064018910052743950146208073734807531585326337255190299479013593177048",
		"9242125384846638455244539718025499187520656849638891445121718043285060962715",
		"19193537340706408393780673650555663400946315854244547166073076857106646648822",
		"18304434138190045565299002497857576312729917122421570570847048885899044066911",
		"3414069037834748010714683439839766707252551718706938493139409206469339193860",
		"2200107935254011532455249498632271792168358058101062834581488968854110637221",
		"7444006411828609161240821190766268619219697705892779992289673142939845111781",
		"2989158289793740976933260235368771790218482325606641944311359635271971610524",
		"4493363282870630048948468172876257509744613375667442776145581530994853006306",
		"19988415938221557483935580305230530170159872660092164016754591597297246728480",
		"6420799032099232530567381966985739115067075057560513545860727825964815033718",
		"15674420489563226471482933484137440990120632151480948351808168212704353243613",
	},
	16: {
		"7125854594771230676309063538553170381388981309715905180812648168450451666949",
		"10584892760408835759171037557523085031109807958595249687578595590925483495719",
		"17378420578696168078108770246001813193391603645039934893646079947849385809708",
		"5197719531648657576331610677873943061391375530310195428570336508080502059500",
		"21502780181413959258645120804791546459158581633539725455184851138307843857652",
		"16202722652873030908676966760474446079743664879432736638175073763738919327123",
		"17383170670268501817767569908046745635812892175025402512363134360174240484031",
		"780015219808527866166693972175944411533958402038254261162116807099471930601",
		"17709218364143363348091131759279763593245505815304410723952140558958661373827",
		"5417459054803698236170107111055968954576219310553344734334015990147055692976",
		"5639229361857591945430619177378291939521259822470956611611226681217385711731",
		"6102141659665122653461566170666794560276370639648230139715313010823856120837",
		"830228186335750807160624022633070928438154689624147893614003050288990376301",
		"1680923722690012258184232372830017941272739110964214216493179303003160873611",
		"18061789969144308585925864590501018242405036975178604261209460724714476572784",
		"17658115586639176198442316339623974100341921720538220980505749120903079035547",
	},
}

func TestWideVectors(t *testing.T) {
	in8 := [8]fr.Element(sequence(8))
	out8 := T8Permutation(in8)
	requireStateEqual(t, mustElements(t, wideVectors[8]...), out8[:])

	in12 := [12]fr.Element(sequence(12))
	out12 := T12Permutation(in12)
	requireStateEqual(t, mustElements(t, wideVectors[12]...), out12[:])

	in16 := [16]fr.Element(sequence(16))
	out16 := T16Permutation(in16)
	requireStateEqual(t, mustElements(t, wideVectors[16]...), out16[:])
}

func TestConsistentPermutation(t *testing.T) {
	for _, width := range []int{2, 3, 4, 8, 12, 16} {
		perm, err := ForWidth(width)
		require.NoError(t, err)
		for range 10 {
			input1 := randomState(t, width)
			input2 := make([]fr.Element, width)
			// rotate right by width/2
			for i := range input1 {
				input2[(i+width/2)%width] = input1[i]
			}

			perm1 := perm.Permutation(input1)
			perm2 := perm.Permutation(input1)
			perm3 := perm.Permutation(input2)
			requireStateEqual(t, perm1, perm2)

			inPlace := append([]fr.Element(nil), input1...)
			perm.Permute(inPlace)
			requireStateEqual(t, perm1, inPlace)

			differ := false
			for i := range perm1 {
				if !perm1[i].Equal(&perm3[i]) {
					differ = true
				}
			}
			require.True(t, differ, "width %d: rotated input collided", width)
		}
	}
}

func TestPermutationLeavesInputUntouched(t *testing.T) {
	perm, err := ForWidth(4)
	require.NoError(t, err)
	in := sequence(4)
	_ = perm.Permutation(in)
	requireStateEqual(t, sequence(4), in)

	arr := [4]fr.Element(sequence(4))
	_ = T4Permutation(arr)
	requireStateEqual(t, sequence(4), arr[:])
}

func TestTypedMatchesSlice(t *testing.T) {
	perm, err := ForWidth(8)
	require.NoError(t, err)
	in := randomState(t, 8)
	arr := [8]fr.Element(in)
	typed := T8Permutation(arr)
	requireStateEqual(t, perm.Permutation(in), typed[:])
}

func TestNewRejectsInvalidConfiguration(t *testing.T) {
	p := params.AllParameters[4]

	t.Run("width 5", func(t *testing.T) {
		diag := append(append([]fr.Element(nil), p.DiagM1...), p.DiagM1[0])
		rc := make([][]fr.Element, 8)
		for i := range rc {
			rc[i] = make([]fr.Element, 5)
		}
		_, err := New(Degree, diag, rc, p.RCInternal)
		require.ErrorIs(t, err, ErrInvalidWidth)
	})

	t.Run("even degree", func(t *testing.T) {
		_, err := New(4, p.DiagM1, p.RCExternal, p.RCInternal)
		require.ErrorIs(t, err, ErrInvalidDegree)
	})

	t.Run("odd full rounds", func(t *testing.T) {
		_, err := New(Degree, p.DiagM1, p.RCExternal[:7], p.RCInternal)
		require.ErrorIs(t, err, ErrInvalidRounds)
	})

	t.Run("typed odd full rounds", func(t *testing.T) {
		rc := make([][4]fr.Element, 7)
		_, err := NewT4(Degree, [4]fr.Element(p.DiagM1), rc, p.RCInternal)
		require.ErrorIs(t, err, ErrInvalidRounds)
	})

	t.Run("raw diagonal", func(t *testing.T) {
		p2 := params.AllParameters[2]
		var two, three fr.Element
		two.SetUint64(2)
		three.SetUint64(3)
		rc := make([][2]fr.Element, len(p2.RCExternal))
		for i := range rc {
			rc[i] = [2]fr.Element(p2.RCExternal[i])
		}
		_, err := NewT2(Degree, [2]fr.Element{two, three}, rc, p2.RCInternal)
		require.ErrorIs(t, err, ErrInternalDiagonal)
	})

	t.Run("unknown builtin", func(t *testing.T) {
		_, err := ForWidth(20)
		require.True(t, errors.Is(err, ErrInvalidWidth))
	})

	t.Run("must new", func(t *testing.T) {
		require.Panics(t, func() { MustNew(Degree, p.DiagM1, p.RCExternal[:3], p.RCInternal) })
	})
}

func TestNewCopiesTables(t *testing.T) {
	src := params.AllParameters[3]
	diag := append([]fr.Element(nil), src.DiagM1...)
	rcE := make([][]fr.Element, len(src.RCExternal))
	for i := range rcE {
		rcE[i] = append([]fr.Element(nil), src.RCExternal[i]...)
	}
	rcI := append([]fr.Element(nil), src.RCInternal...)

	perm := MustNew(Degree, diag, rcE, rcI)
	before := perm.Permutation(sequence(3))

	rcE[0][0].SetUint64(42)
	rcI[0].SetUint64(42)
	requireStateEqual(t, before, perm.Permutation(sequence(3)))
}

func TestPermuteWrongLengthPanics(t *testing.T) {
	perm, err := ForWidth(3)
	require.NoError(t, err)
	require.Equal(t, 3, perm.Width())
	require.Panics(t, func() { perm.Permute(make([]fr.Element, 4)) })
}

func TestSBoxDegrees(t *testing.T) {
	x := mustElement(t, "1234567890123456789012345678901234567890")
	for _, d := range []uint64{3, 5, 7, 9, 11} {
		p := &Permutation{params: &params.Parameters{Degree: d}}
		p.exp = new(big.Int).SetUint64(d)
		got := x
		p.sbox(&got)
		var want fr.Element
		want.Exp(x, p.exp)
		require.True(t, got.Equal(&want), "degree %d", d)
	}
}

func TestExternalLayerT4Matrix(t *testing.T) {
	m := [4][4]uint64{{5, 7, 1, 3}, {4, 6, 1, 1}, {1, 3, 5, 7}, {1, 1, 4, 6}}
	in := randomState(t, 4)
	got := [4]fr.Element(in)
	matMulM4(&got)
	for i := range m {
		var acc fr.Element
		for j := range m[i] {
			var c, term fr.Element
			c.SetUint64(m[i][j])
			term.Mul(&c, &in[j])
			acc.Add(&acc, &term)
		}
		require.True(t, acc.Equal(&got[i]), "row %d", i)
	}
}

func TestConcurrentUse(t *testing.T) {
	perm, err := ForWidth(16)
	require.NoError(t, err)
	in := randomState(t, 16)
	want := perm.Permutation(in)

	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			for range 16 {
				got := perm.Permutation(in)
				for i := range want {
					if !got[i].Equal(&want[i]) {
						return errors.New("concurrent permutation mismatch")
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func BenchmarkPermutation(b *testing.B) {
	for _, width := range []int{2, 3, 4, 8, 12, 16} {
		perm, err := ForWidth(width)
		if err != nil {
			b.Fatal(err)
		}
		state := randomState(b, width)
		b.Run("t"+strconv.Itoa(width), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				perm.Permute(state)
			}
		})
	}
}
