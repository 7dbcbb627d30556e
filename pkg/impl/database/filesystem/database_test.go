package filesystem_test

import (
	"fmt"
	"os"

	"github.com/go-test/deep"
	. "github.com/mandelsoft/goutils/testutils"
	. "github.com/mandelsoft/tasktracker/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/vfs/pkg/vfs"

	me "github.com/mandelsoft/tasktracker/pkg/impl/database/filesystem"
)

// restrictedFileSystem refuses renames and, optionally,
// writing the given file.
type restrictedFileSystem struct {
	vfs.FileSystem
	readonly string
	removed  []string
}

func (fs *restrictedFileSystem) Rename(oldname, newname string) error {
	return fmt.Errorf("rename not implemented yet")
}

func (fs *restrictedFileSystem) OpenFile(name string, flags int, perm vfs.FileMode) (vfs.File, error) {
	if name == fs.readonly && flags&(os.O_WRONLY|os.O_RDWR) != 0 {
		return nil, fmt.Errorf("%s is read-only", name)
	}
	return fs.FileSystem.OpenFile(name, flags, perm)
}

func (fs *restrictedFileSystem) Remove(name string) error {
	fs.removed = append(fs.removed, name)
	return fs.FileSystem.Remove(name)
}

var _ = Describe("database", func() {
	var fs vfs.FileSystem

	BeforeEach(func() {
		fs = Must(TestFileSystem("testdata", false))
	})

	AfterEach(func() {
		vfs.Cleanup(fs)
	})

	Context("list", func() {
		It("reads existing file", func() {
			db := Must(me.New[Object]("testdata/objects.json", fs))
			list := Must(db.ListObjects())
			Expect(list).To(Equal([]Object{
				NewObject(1, "first"),
				NewObject(2, "second"),
			}))
		})

		It("reports corrupted file", func() {
			db := Must(me.New[Object]("testdata/corrupted.json", fs))
			_, err := db.ListObjects()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(HavePrefix("corrupted database testdata/corrupted.json:"))
		})

		It("handles empty file", func() {
			MustBeSuccessful(vfs.WriteFile(fs, "testdata/empty.json", []byte("  \n"), 0o600))
			db := Must(me.New[Object]("testdata/empty.json", fs))
			Expect(Must(db.ListObjects())).To(BeEmpty())
		})
	})

	Context("create", func() {
		It("creates missing file", func() {
			mfs := Must(MemoryFileSystem(nil))
			db := Must(me.New[Object]("data/sub/objects.json", mfs))
			Expect(string(Must(vfs.ReadFile(mfs, "data/sub/objects.json")))).To(Equal("[]"))
			Expect(Must(db.ListObjects())).To(BeEmpty())
		})

		It("keeps existing file", func() {
			mfs := Must(MemoryFileSystem(map[string]string{"objects.json": `[{"id": 3}]`}))
			db := Must(me.New[Object]("objects.json", mfs))
			Expect(Must(db.ListObjects())).To(Equal([]Object{NewObject(3, "")}))
		})

		It("creates by specification", func() {
			mfs := Must(MemoryFileSystem(nil))
			db := Must(me.NewSpecification[Object]("objects.json", mfs).Create())
			Expect(Must(db.ListObjects())).To(BeEmpty())
			Expect(Must(mfs.Stat("objects.json")).IsDir()).To(BeFalse())
		})
	})

	Context("write", func() {
		It("writes objects", func() {
			db := Must(me.New[Object]("testdata/objects.json", fs))
			list := []Object{
				NewObject(1, "first"),
				NewObject(3, "third"),
			}
			MustBeSuccessful(db.SetObjects(list))
			Expect(deep.Equal(Must(db.ListObjects()), list)).To(BeNil())
		})

		It("writes empty list", func() {
			db := Must(me.New[Object]("testdata/objects.json", fs))
			MustBeSuccessful(db.SetObjects(nil))
			Expect(string(Must(vfs.ReadFile(fs, "testdata/objects.json")))).To(Equal("[]\n"))
		})

		It("leaves no temporary files", func() {
			mfs := Must(MemoryFileSystem(nil))
			db := Must(me.New[Object]("objects.json", mfs))
			MustBeSuccessful(db.SetObjects([]Object{NewObject(1, "a")}))
			entries := Must(vfs.ReadDir(mfs, "/"))
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Name()).To(Equal("objects.json"))
		})

		It("writes in place if rename is not supported", func() {
			rfs := &restrictedFileSystem{FileSystem: Must(MemoryFileSystem(map[string]string{"objects.json": `[{"id": 3}]`}))}
			db := Must(me.New[Object]("objects.json", rfs))
			MustBeSuccessful(db.SetObjects([]Object{NewObject(1, "a")}))
			Expect(Must(db.ListObjects())).To(Equal([]Object{NewObject(1, "a")}))
			Expect(rfs.removed).NotTo(ContainElement("objects.json"))
			Expect(Must(vfs.ReadDir(rfs, "/"))).To(HaveLen(1))
		})

		It("keeps the old content if writing fails", func() {
			rfs := &restrictedFileSystem{
				FileSystem: Must(MemoryFileSystem(map[string]string{"objects.json": `[{"id": 3}]`})),
				readonly:   "objects.json",
			}
			db := Must(me.New[Object]("objects.json", rfs))
			Expect(db.SetObjects([]Object{NewObject(1, "a")})).To(MatchError("objects.json is read-only"))
			Expect(string(Must(vfs.ReadFile(rfs, "objects.json")))).To(Equal(`[{"id": 3}]`))
			entries := Must(vfs.ReadDir(rfs, "/"))
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Name()).To(Equal("objects.json"))
		})

		It("writes on a layered filesystem", func() {
			db := Must(me.New[Object]("testdata/objects.json", fs))
			MustBeSuccessful(db.SetObjects([]Object{NewObject(2, "second")}))
			MustBeSuccessful(db.SetObjects([]Object{NewObject(3, "third")}))
			Expect(Must(db.ListObjects())).To(Equal([]Object{NewObject(3, "third")}))
		})
	})

	Context("revision", func() {
		It("ignores formatting", func() {
			mfs := Must(MemoryFileSystem(map[string]string{
				"a.json": `[{"id":1,"name":"a"}]`,
				"b.json": "[\n  {\n    \"name\": \"a\",\n    \"id\": 1\n  }\n]\n",
			}))
			a := Must(me.New[Object]("a.json", mfs))
			b := Must(me.New[Object]("b.json", mfs))
			Expect(Must(a.Revision())).To(Equal(Must(b.Revision())))
		})

		It("changes with content", func() {
			db := Must(me.New[Object]("testdata/objects.json", fs))
			r := Must(db.Revision())
			MustBeSuccessful(db.SetObjects([]Object{NewObject(1, "first")}))
			Expect(Must(db.Revision())).NotTo(Equal(r))
		})

		It("is delivered with a snapshot", func() {
			db := Must(me.New[Object]("testdata/objects.json", fs))
			list, rev, err := db.Snapshot()
			MustBeSuccessful(err)
			Expect(list).To(Equal(Must(db.ListObjects())))
			Expect(rev).To(Equal(Must(db.Revision())))
		})

		It("is stable for rewritten content", func() {
			db := Must(me.New[Object]("testdata/objects.json", fs))
			r := Must(db.Revision())
			MustBeSuccessful(db.SetObjects(Must(db.ListObjects())))
			Expect(Must(db.Revision())).To(Equal(r))
		})
	})
})
