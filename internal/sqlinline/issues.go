package sqlinline

const QInsertIssue = `--sql 07f6a3f4-bb20-4fc0-8a2a-09b6b427f5f1
insert into issues(id, title, description, category, amount, status, reporter_email, created_at)
values (gen_random_uuid(), $1::text, $2::text, $3::text, $4::float8, $5::text, $6::text, now())
returning id;
`

const QListIssues = `--sql 1856e522-096c-4bad-ad84-977a0b2b89b9
select id, title, description, category, amount, status, reporter_email, created_at
from issues
where ($1::text = '' or title ilike '%' || $1::text || '%')
  and ($2::text = '' or category = $2::text)
order by created_at desc
offset $3::int
limit $4::int;
`

const QCountIssues = `--sql 19002646-a950-445d-81ad-22b39fbb0bed
select count(*)
from issues
where ($1::text = '' or title ilike '%' || $1::text || '%')
  and ($2::text = '' or category = $2::text);
`

const QListRecentIssues = `--sql 6360ba2c-790e-42ce-9128-726382ed7ee2
select id, title, description, category, amount, status, reporter_email, created_at
from issues
order by created_at desc
limit $1::int;
`

const QGetIssue = `--sql 243a78f4-5655-44b1-bacf-c1f7ae46560f
select id, title, description, category, amount, status, reporter_email, created_at
from issues
where id = $1::uuid;
`

const QListIssuesByReporter = `--sql 567af9d3-4fc8-4f15-96fd-f9592e4f353b
select id, title, description, category, amount, status, reporter_email, created_at
from issues
where reporter_email = $1::text;
`

const QListOpenIssues = `--sql 212956c4-4800-4f5d-be6e-0a68a4c69760
select id, title, description, category, amount, status, reporter_email, created_at
from issues
where status = 'Open';
`

const QPatchIssue = `--sql 88bf50cf-dc4d-40ac-89b3-a22e27764616
update issues set
  title       = coalesce($2::text, title),
  description = coalesce($3::text, description),
  category    = coalesce($4::text, category),
  amount      = coalesce($5::float8, amount),
  status      = coalesce($6::text, status)
where id = $1::uuid;
`

const QReplaceIssue = `--sql ef7c9498-377b-4af4-9418-f7fb0358ee65
update issues set
  title       = $2::text,
  description = $3::text,
  category    = $4::text,
  amount      = $5::float8,
  status      = $6::text
where id = $1::uuid;
`

const QDeleteIssue = `--sql 148e671d-fa2d-43a4-9de0-3593bf74e419
delete from issues
where id = $1::uuid;
`

const QResolveIssue = `--sql dacbfcef-4479-4251-bde4-07c130f81820
update issues set status = 'Resolved'
where id = $1::uuid and status <> 'Resolved';
`
