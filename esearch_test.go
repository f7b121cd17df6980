package imapparser

import "testing"

func TestEsearchWithCorrelatorAndReturnData(t *testing.T) {
	r, err := ParseResponseLine([]byte("* ESEARCH (TAG \"a1\") UID COUNT 5 ALL 2,4:6,9\r\n"))
	if err != nil {
		t.Fatalf("ParseResponseLine: %v", err)
	}
	es := r.Untagged.Data.(Esearch)
	if !es.HasTag || es.Tag != "a1" {
		t.Fatalf("tag = %v %q", es.HasTag, es.Tag)
	}
	if !es.UID {
		t.Fatalf("expected UID flag set")
	}
	count, ok := es.Returned[TokenCount]
	if !ok || !count.HasNum || count.Num != 5 {
		t.Fatalf("count = %+v", count)
	}
	all, ok := es.Returned[TokenAll]
	if !ok {
		t.Fatalf("missing ALL return data")
	}
	want := []SeqRange{{Min: 2, Max: 2}, {Min: 4, Max: 6}, {Min: 9, Max: 9}}
	if len(all.Sequences) != len(want) {
		t.Fatalf("sequences = %+v", all.Sequences)
	}
	for i := range want {
		if all.Sequences[i] != want[i] {
			t.Fatalf("sequences[%d] = %+v, want %+v", i, all.Sequences[i], want[i])
		}
	}
}

func TestEsearchNoCorrelator(t *testing.T) {
	r, err := ParseResponseLine([]byte("* ESEARCH MIN 1 MAX 9\r\n"))
	if err != nil {
		t.Fatalf("ParseResponseLine: %v", err)
	}
	es := r.Untagged.Data.(Esearch)
	if es.HasTag {
		t.Fatalf("expected no correlator")
	}
	if es.Returned[TokenMin].Num != 1 || es.Returned[TokenMax].Num != 9 {
		t.Fatalf("returned = %+v", es.Returned)
	}
}

func TestSequenceSetReversedRangeNormalized(t *testing.T) {
	p := newParser([]byte("5:2"))
	seqs, err := p.parseSequenceSet()
	if err != nil {
		t.Fatalf("parseSequenceSet: %v", err)
	}
	if len(seqs) != 1 || seqs[0].Min != 2 || seqs[0].Max != 5 {
		t.Fatalf("got %+v", seqs)
	}
}

func TestStatusResponse(t *testing.T) {
	r, err := ParseResponseLine([]byte("* STATUS INBOX (MESSAGES 231 UIDNEXT 44292 UNSEEN 5)\r\n"))
	if err != nil {
		t.Fatalf("ParseResponseLine: %v", err)
	}
	st := r.Untagged.Data.(Status)
	if string(st.Mailbox) != "INBOX" {
		t.Fatalf("mailbox = %q", st.Mailbox)
	}
	if st.Attrs[TokenMessages] != 231 || st.Attrs[TokenUIDNext] != 44292 || st.Attrs[TokenUnseen] != 5 {
		t.Fatalf("attrs = %v", st.Attrs)
	}
}

func TestStatusResponseUnknownAttrFails(t *testing.T) {
	_, err := ParseResponseLine([]byte("* STATUS INBOX (BOGUS 1)\r\n"))
	if err == nil {
		t.Fatalf("expected error for unknown status-att")
	}
}
