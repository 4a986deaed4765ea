package pagepkg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestDecode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		body    string
		want    Page[item]
		wantErr bool
	}{
		{
			name: "Envelope",
			body: `{"data":[{"id":"1","name":"a"},{"id":"2","name":"b"}],"pagination":{"totalPages":7}}`,
			want: Page[item]{
				Items:      []item{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}},
				TotalPages: 7,
				HasTotal:   true,
			},
		},
		{
			name: "EnvelopeWithoutPagination",
			body: `{"data":[{"id":"1","name":"a"}]}`,
			want: Page[item]{Items: []item{{ID: "1", Name: "a"}}},
		},
		{
			name: "BareArray",
			body: `[{"id":"1","name":"a"}]`,
			want: Page[item]{Items: []item{{ID: "1", Name: "a"}}},
		},
		{
			name: "EmptyBareArray",
			body: `[]`,
			want: Page[item]{Items: []item{}},
		},
		{
			name:    "Garbage",
			body:    `"nope"`,
			wantErr: true,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Decode[item]([]byte(tc.body))
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Decode mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
