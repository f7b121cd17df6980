package imapparser

import "crawshaw.io/iox"

// DetachLiteral copies b — typically the Content of a BodySectionValue,
// or any other literal-derived byte slice returned by this package — into
// f, an iox.BufferFile. b aliases the Scanner's internal buffer (or a
// framed-line slice derived from it) and is invalidated by the Scanner's
// next Feed or Consume call; callers that need a FETCH literal to outlive
// that call without holding it in a long-lived Go slice should route it
// through a BufferFile instead, the same way the command-side parser
// spills large APPEND/literal payloads into one.
//
// f is truncated and rewound to the start before the copy, so it can be
// reused across calls.
func DetachLiteral(f *iox.BufferFile, b []byte) error {
	if err := f.Truncate(0); err != nil {
		return err
	}
	if _, err := f.Seek(0, 0); err != nil {
		return err
	}
	if _, err := f.Write(b); err != nil {
		return err
	}
	_, err := f.Seek(0, 0)
	return err
}
